// Package cli implements the hjarta-conf command line.
//
// Every command loads the files given with --file, in order, into one store
// and works on the merged result:
//
//	hjarta-conf -f base.yaml -f local.toml get database.port
//	hjarta-conf -f base.yaml exist cache.ttl
//	hjarta-conf -f base.yaml dump --format json --expand
//	hjarta-conf -f base.yaml set server.port 9090
//	hjarta-conf -f base.yaml serve --address :8080 --watch
package cli
