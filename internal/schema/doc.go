// Package schema is the single source of truth for the registration
// form: every field's wire name, section, kind and required flag, in the
// order the backend's create schema lays them out. Both the validation
// engine and any rendering layer consume it; nothing mutates it.
package schema
