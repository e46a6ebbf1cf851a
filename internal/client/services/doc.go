// Package services contains the client-side application services the CLI
// uses beyond the session and list controllers: reading and editing posts,
// managing categories, uploading images and validating profile changes.
//
// Services validate input before it leaves the client; validation failures
// wrap common.ErrorValidation.
package services
