// Package modules contains the self-contained application features.
//
// Each subdirectory is a module implementing module.Module. Modules are
// listed in internal/app/modules.go and mounted under /app/<name> at startup.
package modules
