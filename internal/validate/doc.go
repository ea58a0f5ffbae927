// Package validate turns a candidate registration form into a mapping of
// field name to error message. It is pure: no I/O, no mutation of the
// form, and identical input always yields an identical mapping. An empty
// mapping means the form is ready to submit.
package validate
