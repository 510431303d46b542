// Package proto holds the gRPC transport definition for out-of-process
// text generators. Generated stubs are not committed; run go generate.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
