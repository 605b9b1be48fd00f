package store

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/zeebo/blake3"
)

const imageExtension = ".png"

var ErrInvalidDigest = errors.New("invalid image digest")

// ImageStore writes plot images to a directory, naming each file after the
// blake3 digest of its content. Identical images share one file.
type ImageStore struct {
	dir string
}

func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create image directory: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Put stores the image and returns its digest and path.
func (s *ImageStore) Put(data []byte) (string, string, error) {
	digest := Digest(data)
	path := s.path(digest)

	if _, err := os.Stat(path); err == nil {
		log.Debugf("Image %s already stored", digest)
		return digest, path, nil
	}

	tmp, err := os.CreateTemp(s.dir, "graph-*.tmp")
	if err != nil {
		return "", "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", "", err
	}
	if err := tmp.Close(); err != nil {
		return "", "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", "", err
	}

	return digest, path, nil
}

// Get reads a stored image back by digest.
func (s *ImageStore) Get(digest string) ([]byte, error) {
	if !validDigest(digest) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDigest, digest)
	}

	data, err := os.ReadFile(s.path(digest))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: image %s", ErrNotFound, digest)
	}
	return data, err
}

func (s *ImageStore) path(digest string) string {
	return filepath.Join(s.dir, digest+imageExtension)
}

func validDigest(digest string) bool {
	if len(digest) != 64 {
		return false
	}
	_, err := hex.DecodeString(digest)
	return err == nil
}
