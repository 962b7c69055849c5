/*
Package auth provides ready-made authentication accessors for arbor trees.

The dispatch pipeline passes handlers a lazy, zero-argument accessor; this
package builds two common implementations of it. JWT consumption reads a
bearer token off the request and verifies it against an application key.
Google consumption trades an oauth token for the Google user, which is a bit
more secure than a bearer authentication header for calls arriving from
internal tooling.
*/
package auth
