// Package catalog lists the sports and study years offered on the
// registration form. The built-in list is embedded as YAML and can be
// replaced by a file at startup.
package catalog
