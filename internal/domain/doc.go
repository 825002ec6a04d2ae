// Package domain contains the core banking entities of the services:
// customers, their accounts, and credit cards. It also defines the shared
// audit fields, validation errors, and the number generator used to assign
// account and card numbers. It is independent of storage and transport.
package domain
