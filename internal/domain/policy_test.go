package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/internal/domain"
)

func TestAllowed_AdminTieneAccesoTotal(t *testing.T) {
	recursos := []string{
		domain.ResourceDashboard, domain.ResourceItems, domain.ResourceTransactions,
		domain.ResourceSuppliers, domain.ResourceCategories, domain.ResourceDestinations,
		domain.ResourceUsers,
	}
	for _, r := range recursos {
		assert.True(t, domain.Allowed(domain.RoleAdmin, r, domain.ActionView),
			"admin debe ver %s", r)
	}
	assert.True(t, domain.Allowed(domain.RoleAdmin, domain.ResourceTransactions, domain.ActionStockIn))
	assert.True(t, domain.Allowed(domain.RoleAdmin, domain.ResourceTransactions, domain.ActionCancel))
}

func TestAllowed_ManagerNoVeUsuariosNiCrea(t *testing.T) {
	assert.False(t, domain.Allowed(domain.RoleManager, domain.ResourceUsers, domain.ActionView))
	assert.False(t, domain.Allowed(domain.RoleManager, domain.ResourceItems, domain.ActionCreate))
	assert.False(t, domain.Allowed(domain.RoleManager, domain.ResourceTransactions, domain.ActionStockIn))
	assert.False(t, domain.Allowed(domain.RoleManager, domain.ResourceTransactions, domain.ActionCancel))

	// Pero sí ve catálogos y opera salidas y devoluciones.
	assert.True(t, domain.Allowed(domain.RoleManager, domain.ResourceItems, domain.ActionView))
	assert.True(t, domain.Allowed(domain.RoleManager, domain.ResourceTransactions, domain.ActionStockOut))
	assert.True(t, domain.Allowed(domain.RoleManager, domain.ResourceTransactions, domain.ActionReturn))
}

func TestAllowed_StaffSoloDashboardYTransacciones(t *testing.T) {
	assert.True(t, domain.Allowed(domain.RoleStaff, domain.ResourceDashboard, domain.ActionView))
	assert.True(t, domain.Allowed(domain.RoleStaff, domain.ResourceTransactions, domain.ActionStockOut))

	assert.False(t, domain.Allowed(domain.RoleStaff, domain.ResourceItems, domain.ActionView))
	assert.False(t, domain.Allowed(domain.RoleStaff, domain.ResourceSuppliers, domain.ActionView))
	assert.False(t, domain.Allowed(domain.RoleStaff, domain.ResourceUsers, domain.ActionView))
	assert.False(t, domain.Allowed(domain.RoleStaff, domain.ResourceTransactions, domain.ActionStockIn))
}

func TestAllowed_RolCaseInsensitive(t *testing.T) {
	assert.True(t, domain.Allowed("Admin", domain.ResourceUsers, domain.ActionView))
	assert.True(t, domain.Allowed("MANAGER", domain.ResourceItems, domain.ActionView))
	assert.True(t, domain.Allowed(" staff ", domain.ResourceDashboard, domain.ActionView))
}

func TestAllowed_RolDesconocido_SinAcceso(t *testing.T) {
	assert.False(t, domain.Allowed("auditor", domain.ResourceDashboard, domain.ActionView))
	assert.False(t, domain.Allowed("", domain.ResourceDashboard, domain.ActionView))
}

func TestCanViewMenu_EsLaAccionView(t *testing.T) {
	assert.True(t, domain.CanViewMenu(domain.RoleStaff, domain.ResourceTransactions))
	assert.False(t, domain.CanViewMenu(domain.RoleStaff, domain.ResourceItems))
}
