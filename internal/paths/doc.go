// Package paths resolves the directories pamctl operates on.
//
// The PAM configuration directory is chosen by privilege level:
// /etc/pam.d when running as root, a local ./pam.d otherwise. The backup
// snapshot lives at a sibling path formed by appending ".backup" to the
// configuration directory. Both can be overridden by flags or
// configuration; the core packages never compute paths themselves.
package paths
