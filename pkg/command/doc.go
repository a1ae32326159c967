/*
Package command defines command handlers and the ordered tables a dispatch loop
matches input against.

A Table is built once per loop level and never changes while that loop runs.
Lookup returns every entry with the requested name, so a table holding two
commands called "hello" runs both, in the order they were declared.
*/
package command
