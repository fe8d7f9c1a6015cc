package main

import "go.uber.org/zap"

type Vector2 struct {
	X, Y int
}

type model struct {
	width          int
	height         int
	session        *session
	backend        *termBackend
	config         *Config
	logger         *zap.Logger
	pointer        Vector2 // last pointer position, in screen pixels
	help           bool
	errorMessage   string
	successMessage string
	err            error
}

type brush struct {
	color uint32
	size  int
}

type dragState struct {
	active bool
	last   Vector2
}
