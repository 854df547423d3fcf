package report

import (
	"encoding/hex"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// assetDir owns the on-disk asset directory for one report path:
// <dir(report)>/assets/<stem(report)>. The directory is deleted and
// recreated on every write pass, so its file set always reflects exactly
// one pass and no asset is ever stale.
type assetDir struct {
	dir  string // filesystem path of the asset directory
	href string // href prefix relative to the report file's directory
}

func newAssetDir(reportPath string) *assetDir {
	stem := reportStem(reportPath)
	return &assetDir{
		dir:  filepath.Join(filepath.Dir(reportPath), "assets", stem),
		href: path.Join("assets", stem),
	}
}

// reportStem returns the report file name without its extension.
func reportStem(reportPath string) string {
	base := filepath.Base(reportPath)
	return base[:len(base)-len(filepath.Ext(base))]
}

// Reset deletes and recreates the asset directory.
func (a *assetDir) Reset() error {
	if err := os.RemoveAll(a.dir); err != nil {
		return fmt.Errorf("%w: %v", ErrAssetDir, err)
	}
	if err := os.MkdirAll(a.dir, 0o750); err != nil {
		return fmt.Errorf("%w: %v", ErrAssetDir, err)
	}
	return nil
}

// fileName reserves a collision-free name with the given extension and
// returns both the filesystem path and the href relative to the report
// file's directory. The name is a fresh random identifier per call, so
// two renders in the same pass never collide even with identical content.
func (a *assetDir) fileName(ext string) (fsPath, href string) {
	name := newAssetID() + "." + ext
	return filepath.Join(a.dir, name), path.Join(a.href, name)
}

// newAssetID returns 32 hex characters from a random UUID.
func newAssetID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
