// Package publish writes rendered pages to a static store.
//
// A Publisher renders a page through pkg/render and hands the bytes to a
// Store. Two stores ship with the package:
//
//	store, err := publish.NewDiskStore("dist")
//	store := publish.NewS3Store(client, "my-bucket", "site/")
//
// S3Store accepts any client with a PutObject method, so tests and
// alternative S3 implementations can be passed in place of *s3.Client.
package publish
