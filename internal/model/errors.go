package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound  = errors.New("player not found")
	ErrPlayerExists    = errors.New("player already exists")
	ErrInvalidUsername = errors.New("username must not be empty")

	// Scanned code errors
	ErrDuplicateEntry = errors.New("qr code already scanned by player")
	ErrQRCodeNotFound = errors.New("qr code not found")
	ErrInvalidQRCode  = errors.New("qr code must have a hash")
)
