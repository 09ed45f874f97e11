/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of object.
* It has a primary index, and may possess one or more secondary
indexes (1:1 or 1:N).
* Easy queries for one and iteration.

ModelBucket is the type safe entry point. Extensions declare one model
bucket per stored type and register it with the query router, so that
every stored model can be read by clients via ABCI queries.
*/
package orm
