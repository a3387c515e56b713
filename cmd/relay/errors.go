package main

import "errors"

var errNilFlagsConfig = errors.New("nil flags config")
