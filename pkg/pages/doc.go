// Package pages loads the rendered HTML of wiki pages.
//
// A page titled "Help:Contents" lives in the file "Help:Contents.html": the
// wiki-title encoding of the title plus Extension. Local serves a directory,
// S3 serves objects from a bucket (or an S3-compatible store), and Cached
// keeps recently read pages in an LRU in front of either. New picks the
// backend from Config:
//
//	src, err := pages.New(ctx, cfg)
//	html, err := src.Read(ctx, "Main Page")
//	if errors.Is(err, pages.ErrNotFound) {
//		// 404
//	}
package pages
