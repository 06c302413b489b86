package service

import (
	"context"
	"fmt"

	"gocloud.dev/secrets"

	// Keeper drivers selectable through the key URI scheme.
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

type kmsService struct{}

// NewKMSService creates a KMSService backed by gocloud.dev/secrets.
func NewKMSService() KMSService {
	return &kmsService{}
}

// OpenKeeper opens a keeper for keyURI.
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (Keeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}
