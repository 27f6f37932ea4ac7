// Package config loads the immutable process configuration for the
// transcribe proxy. Values are read once at startup from the environment
// (with optional .env file support) and passed explicitly into collaborators;
// nothing reads ambient environment state after startup.
package config
