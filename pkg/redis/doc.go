// Package redis connects to a Redis server with retry, for the optional
// Redis-backed client state store.
//
// Config fields are populated from environment variables via the config
// package:
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil { ... }
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil { ... }
//	defer client.Close()
//
//	store, err := kv.NewRedisStore(client, "userkit:")
package redis
