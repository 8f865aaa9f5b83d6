package app

import (
	"go.uber.org/zap"

	"github.com/metforge/steelctl/internal/domain"
)

// Cache keys for the reference lists kept in local storage.
const (
	CacheBranches     = "branches"
	CacheProductTypes = "productTypes"
)

// Branches returns the branch list, refreshing the local cache on success.
// When the backend is unreachable the last cached copy is served instead.
func (a *Application) Branches() ([]domain.Branch, error) {
	branches, err := a.api.Branches()
	if err == nil {
		if cerr := a.stateDB.PutCache(CacheBranches, branches); cerr != nil {
			zap.L().Error("branch cache write failed", zap.Error(cerr))
		}
		return branches, nil
	}
	var cached []domain.Branch
	if ok, cerr := a.stateDB.GetCache(CacheBranches, &cached); cerr != nil || !ok {
		return nil, err
	}
	zap.L().Warn("backend unreachable, serving cached branches", zap.Error(err))
	return cached, nil
}

// ProductTypes returns the product type templates with the same
// cache-on-success, fall-back-when-offline behavior as Branches.
func (a *Application) ProductTypes() ([]domain.ProductType, error) {
	types, err := a.api.ProductTypes()
	if err == nil {
		if cerr := a.stateDB.PutCache(CacheProductTypes, types); cerr != nil {
			zap.L().Error("product type cache write failed", zap.Error(cerr))
		}
		return types, nil
	}
	var cached []domain.ProductType
	if ok, cerr := a.stateDB.GetCache(CacheProductTypes, &cached); cerr != nil || !ok {
		return nil, err
	}
	zap.L().Warn("backend unreachable, serving cached product types", zap.Error(err))
	return cached, nil
}
