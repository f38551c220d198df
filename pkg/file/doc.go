// Package file loads attachment content referenced by notifications.
//
// A reference is either a plain path, handled by the fallback loader of a Mux,
// or a "<scheme>://<key>" string routed to the loader registered for scheme.
//
//	local, err := file.NewLocalStorage("./attachments")
//	if err != nil {
//	    return err
//	}
//	remote, err := file.NewS3Storage(ctx, file.S3Config{Bucket: "invoices", Region: "eu-west-1"})
//	if err != nil {
//	    return err
//	}
//	mux := file.NewMux(local)
//	mux.Handle("s3", remote)
//
//	c, err := mux.Load(ctx, "s3://2026/03/invoice-1.pdf")
//
// LocalStorage confines reads to its base directory. Both loaders reject
// content larger than DefaultMaxSize unless configured otherwise.
//
// S3 errors are classified into sentinel errors such as ErrFileNotFound,
// ErrAccessDenied and ErrOperationTimeout; use errors.Is to inspect them.
package file
