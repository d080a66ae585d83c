//go:build !dsdebug

package check

const Enabled = false
