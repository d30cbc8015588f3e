//go:build !flashdebug

package flash

const debugInvariants = false
