/*
Package outbox is a durable, append only log of events emitted by the
extensions.

Every event is stored under the next value of a single sequence. Events
are never modified or deleted. An external relayer polls the log with a
cursor, the sequence of the last event it processed, and receives all newer
events in emission order.

Events are written through the transaction store. A transaction that fails
emits nothing.
*/
package outbox
