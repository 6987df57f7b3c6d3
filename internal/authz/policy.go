// Package authz centralizes role and ownership checks so the rules live in one
// place instead of inline comparisons scattered across services.
package authz

import (
	"github.com/intwaza/online-marketplace/internal/domain"
)

// CanActOnOrder: admins act on any order, shoppers only on their own, sellers
// only on orders containing at least one product of their store.
func CanActOnOrder(u *domain.User, o *domain.Order, sellerStoreID string) bool {
	switch u.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleShopper:
		return o.UserID == u.ID
	case domain.RoleSeller:
		return sellerStoreID != "" && OrderContainsStore(o, sellerStoreID)
	}
	return false
}

// CanDeleteOrder: only the owner or an admin.
func CanDeleteOrder(u *domain.User, o *domain.Order) bool {
	return u.Role == domain.RoleAdmin || o.UserID == u.ID
}

func CanManageStore(u *domain.User, s *domain.Store) bool {
	return u.Role == domain.RoleAdmin || s.OwnerID == u.ID
}

// CanManageProduct: the product's store owner or an admin.
func CanManageProduct(u *domain.User, p *domain.Product, sellerStoreID string) bool {
	return u.Role == domain.RoleAdmin || (sellerStoreID != "" && p.StoreID == sellerStoreID)
}

// CanEditReview: reviews are edited by their author only.
func CanEditReview(u *domain.User, rv *domain.Review) bool {
	return rv.UserID == u.ID
}

func CanDeleteReview(u *domain.User, rv *domain.Review) bool {
	return u.Role == domain.RoleAdmin || rv.UserID == u.ID
}

func OrderContainsStore(o *domain.Order, storeID string) bool {
	for _, it := range o.Items {
		if it.Product != nil && it.Product.StoreID == storeID {
			return true
		}
	}
	return false
}
