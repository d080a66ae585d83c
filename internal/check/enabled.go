//go:build dsdebug

package check

const Enabled = true
