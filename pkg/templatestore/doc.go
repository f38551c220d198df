// Package templatestore provides sources of localized notification templates.
//
// Every store implements notification.TemplateStore and reports a missing
// notification type with ErrTemplatesNotFound.
//
//   - MemoryStore keeps templates in a map, for tests and development.
//   - YAMLStore reads <dir>/<type>.yaml files.
//   - RedisStore keeps a JSON array per type at <prefix><type>.
//   - CachedStore memoizes any store in an LRU with expiry; Watch
//     invalidates it when YAML files change.
//
// A YAML file looks like:
//
//	templates:
//	  - language_code: en
//	    subject: "Your order {{OrderNumber}} has shipped"
//	    body: "Hi {{Recipient}}, ..."
//	    layout_id: main
//
// Redis usage:
//
//	client, err := templatestore.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//	store := templatestore.NewCachedStore(
//	    templatestore.NewRedisStore(client, templatestore.WithPrefix(cfg.KeyPrefix)),
//	    templatestore.CacheConfig{Size: 128, TTL: time.Minute},
//	)
package templatestore
