package statenav

// Version is the release of the library and its tools.
var Version = "0.1.0"
