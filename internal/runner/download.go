package runner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dlxrun/dlx/internal/fetch"
)

// ChecksumError reports a mismatch between a pinned checksum and the digest
// of the downloaded bytes. No payload reaches its final path when this is
// returned.
type ChecksumError struct {
	URL      string
	Expected string
	Actual   string
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch for %s:\nexpected: %s\nactual:   %s",
		e.URL, e.Expected, e.Actual)
}

// Downloader fetches artifact bytes and computes their SHA-256 digest.
type Downloader struct {
	fetcher *fetch.Client
	log     logrus.FieldLogger
}

// NewDownloader creates a downloader on top of the given fetch client.
func NewDownloader(fetcher *fetch.Client, log logrus.FieldLogger) *Downloader {
	if fetcher == nil {
		fetcher = fetch.NewClient()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Downloader{fetcher: fetcher, log: log}
}

// Download performs one fetch of url and returns the body together with its
// lowercase hex SHA-256. Network failures and non-2xx statuses propagate
// unchanged; retry policy belongs to the fetch client, not here.
//
// When expected is non-empty it is compared case-insensitively against the
// computed digest; a mismatch yields a ChecksumError and the body is
// discarded.
func (d *Downloader) Download(ctx context.Context, url, expected string) ([]byte, string, error) {
	body, err := d.fetcher.Get(ctx, url)
	if err != nil {
		return nil, "", err
	}

	sum := sha256.Sum256(body)
	actual := hex.EncodeToString(sum[:])

	if expected != "" && !strings.EqualFold(expected, actual) {
		return nil, "", &ChecksumError{URL: url, Expected: strings.ToLower(expected), Actual: actual}
	}

	d.log.WithFields(logrus.Fields{
		"url":      url,
		"bytes":    len(body),
		"checksum": actual,
	}).Debug("downloaded artifact")

	return body, actual, nil
}
