/*
Package gconf implements a configuration store intended to be used as a
global, in-database configuration.

Each extension keeps a single configuration object saved under the "_c:"
prefixed name of the extension. The initial value is read from the genesis
file ("conf" section). Later changes are done with messages signed by the
configuration owner, see UpdateConfigurationHandler and PauseHandler.
*/
package gconf
