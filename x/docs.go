/*
Package x contains the extensions of the application and the helpers
they share.

Extensions implement common functionality (Handler, Decorator,
Initializer, etc.) and are combined together by the application.
This package holds what more than one extension needs: authentication
helpers, deterministic identifiers, fee computation, custody of escrowed
funds and the shared root errors with their categories.
*/
package x
