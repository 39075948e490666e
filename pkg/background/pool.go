package background

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cjelland/redwall/util/log"
	"github.com/google/uuid"
)

// Pool maintains the on-disk set of accepted wallpaper candidates plus one
// icon per subreddit. Image files are named <community>_<id>.jpg, icons
// <community>.png.
type Pool struct {
	imagesDir string
	iconsDir  string
}

// NewPool creates a pool over the given image and icon directories.
func NewPool(imagesDir, iconsDir string) *Pool {
	return &Pool{imagesDir: imagesDir, iconsDir: iconsDir}
}

// ImagesDir returns the directory holding the candidate images.
func (p *Pool) ImagesDir() string {
	return p.imagesDir
}

// ImagePath returns the absolute path a submission's image is stored under.
func (p *Pool) ImagePath(community, id string) string {
	return filepath.Join(p.imagesDir, DerivedFilename(community, id))
}

// IconPath returns the absolute path of a community's icon.
func (p *Pool) IconPath(community string) string {
	return filepath.Join(p.iconsDir, community+IconExt)
}

// SaveImage streams an accepted image into the pool. The content lands in a
// temporary file first and is renamed into place so readers never observe a
// partial download. Returns the pooled filename.
func (p *Pool) SaveImage(community, id string, r io.Reader) (string, error) {
	target := p.ImagePath(community, id)
	if err := p.writeAtomic(p.imagesDir, target, r); err != nil {
		return "", err
	}
	return DerivedFilename(community, id), nil
}

// SaveIcon streams a community icon into the icon directory.
func (p *Pool) SaveIcon(community string, r io.Reader) error {
	return p.writeAtomic(p.iconsDir, p.IconPath(community), r)
}

func (p *Pool) writeAtomic(dir, target string, r io.Reader) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create pool directory %s: %w", dir, err)
	}

	tmp := filepath.Join(dir, uuid.NewString()+".part")
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	if _, err := io.Copy(file, r); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", filepath.Base(target), err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move %s into pool: %w", filepath.Base(target), err)
	}
	return nil
}

// ownerOfImage extracts the community a pooled image file belongs to: the stem
// minus the trailing _<id> segment. Community names may themselves contain
// underscores, submission ids never do, so the last underscore is the split point.
func ownerOfImage(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	idx := strings.LastIndex(stem, "_")
	if idx <= 0 {
		return ""
	}
	return stem[:idx]
}

// Remove deletes every pooled image and icon belonging to the given community.
// Ownership is an exact stem match, case-insensitively: removing "cat" must
// never touch files of "cats" or "cat_pics".
func (p *Pool) Remove(community string) error {
	entries, err := os.ReadDir(p.imagesDir)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read image pool: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(ownerOfImage(entry.Name()), community) {
			if err := os.Remove(filepath.Join(p.imagesDir, entry.Name())); err != nil {
				log.Printf("Pool: failed to delete %s: %v", entry.Name(), err)
			}
		}
	}

	icons, err := os.ReadDir(p.iconsDir)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read icon pool: %w", err)
	}
	for _, entry := range icons {
		if entry.IsDir() {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if strings.EqualFold(stem, community) {
			if err := os.Remove(filepath.Join(p.iconsDir, entry.Name())); err != nil {
				log.Printf("Pool: failed to delete icon %s: %v", entry.Name(), err)
			}
		}
	}
	return nil
}

// List returns the filenames of all pooled candidate images.
func (p *Pool) List() ([]string, error) {
	entries, err := os.ReadDir(p.imagesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image pool: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ImageExt) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Delete removes a single pooled image by filename.
func (p *Pool) Delete(filename string) error {
	if filename != filepath.Base(filename) {
		return fmt.Errorf("invalid pool filename: %q", filename)
	}
	if err := os.Remove(filepath.Join(p.imagesDir, filename)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", filename, err)
	}
	return nil
}
