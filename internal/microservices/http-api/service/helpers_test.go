package service

import "context"

func ctx() context.Context {
	return context.Background()
}

func strPtr(s string) *string {
	return &s
}
