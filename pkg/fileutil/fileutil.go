// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fileutil

import (
	"bytes"
	"os"
)

// WriteFile writes data to dst. It writes to a temporary file next to dst
// and then moves it into place, so readers never see a partial file. A dst
// that already holds data is left untouched.
func WriteFile(dst string, data []byte, perm os.FileMode) (err error) {
	if Identical(dst, data) {
		return nil
	}

	tempDst := dst + ".tmp"
	dstFile, err := os.OpenFile(tempDst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		dstFile.Close()
		if err == nil {
			err = os.Rename(tempDst, dst)
		}
		if err != nil {
			os.Remove(tempDst)
		}
	}()

	if _, err = dstFile.Write(data); err != nil {
		return err
	}
	return dstFile.Sync()
}

// Identical reports whether the file at path holds exactly data.
func Identical(path string, data []byte) bool {
	st, err := os.Stat(path)
	if err != nil || !st.Mode().IsRegular() || st.Size() != int64(len(data)) {
		return false
	}
	cur, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return bytes.Equal(cur, data)
}
