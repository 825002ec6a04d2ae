// Package events carries account notifications from the services to any
// interested consumer.
//
// A service wraps a message such as AccountsMsg in an Event and hands it to
// an EventEmitter. The emitter fans the event out to every registered
// EventHandler; LogPublisher is the handler wired in by default.
package events
