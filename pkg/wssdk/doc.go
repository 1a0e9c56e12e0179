// Package wssdk provides the request/response types of the workspace service
// HTTP API and a small client for calling it from other Go services.
//
// The client does not mint identity tokens; pass it an access token issued by
// the identity provider:
//
//	client := wssdk.NewClient("https://workspace.internal", token)
//	ctx, err := client.GetContext(context.Background())
package wssdk
