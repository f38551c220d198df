// Package cache provides a generic, thread-safe LRU cache with optional
// per-entry expiry.
//
//	c := cache.New[string, notification.Templates](256, cache.WithTTL(5*time.Minute))
//	c.Put("OrderShipped", templates)
//	if ts, ok := c.Get("OrderShipped"); ok {
//	    // ...
//	}
//
// Get, Put and Remove are O(1).
package cache
