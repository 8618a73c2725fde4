// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"path"
	"strings"
)

const (
	// ObjectSuffix is the file suffix of every stored item.
	ObjectSuffix = ".env.enc"
	// LeaseFile is the name of the rotation lease object inside the
	// directory. The leading dot keeps it out of listings.
	LeaseFile = ".rotation.lock"
)

// ObjectFile returns the file name of the named item.
func ObjectFile(name string) string {
	return name + ObjectSuffix
}

// ObjectPath returns the full object path of the named item inside dir.
func ObjectPath(dir, name string) string {
	return path.Join(cleanDir(dir), ObjectFile(name))
}

// LeasePath returns the path of the rotation lease inside dir.
func LeasePath(dir string) string {
	return path.Join(cleanDir(dir), LeaseFile)
}

// ItemName extracts the item name from a file name. It reports false for
// files that are not items: wrong suffix, empty name or dot-files.
func ItemName(file string) (string, bool) {
	if !strings.HasSuffix(file, ObjectSuffix) {
		return "", false
	}

	name := strings.TrimSuffix(file, ObjectSuffix)
	if name == "" || strings.HasPrefix(name, ".") || strings.Contains(name, "/") {
		return "", false
	}

	return name, true
}

func cleanDir(dir string) string {
	return strings.Trim(path.Clean("/"+dir), "/")
}
