// Package config defines the format-agnostic settings model for the
// application, along with the Loader interface for reading it from a
// settings file.
//
// The Model is merged with command-line flags by the cli package; concrete
// file formats, such as HCL, are implemented in separate packages.
package config
