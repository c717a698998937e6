// Package document stores a text buffer as logical lines with their
// terminators attached, tracks a monotonically increasing version, and
// exposes the byte offsets the phantom package needs: line lengths including
// line-ending bytes and the absolute offset of each line start.
package document
