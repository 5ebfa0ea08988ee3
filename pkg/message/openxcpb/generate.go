package openxcpb

//go:generate protoc --go_out=. --go_opt=paths=source_relative openxc.proto
