// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gallery

import (
	"errors"
	"io/fs"
	"os"
)

// AssetReport describes the images found for the gallery.
type AssetReport struct {
	Missing    []int
	TotalBytes uint64
}

// CheckAssets looks for img1.jpeg .. img<total>.jpeg in dir. Missing images
// are a rendering fault only; callers log the report, never fail on it.
func CheckAssets(dir string, total int) (AssetReport, error) {
	return checkFS(os.DirFS(dir), total)
}

func checkFS(fsys fs.FS, total int) (AssetReport, error) {
	var rep AssetReport
	for _, n := range Positions(total) {
		info, err := fs.Stat(fsys, ImageFile(n))
		if errors.Is(err, fs.ErrNotExist) {
			rep.Missing = append(rep.Missing, n)
			continue
		}
		if err != nil {
			return rep, err
		}
		rep.TotalBytes += uint64(info.Size())
	}
	return rep, nil
}
