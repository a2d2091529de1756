package domain

// Recursos (segmentos de primer nivel de la API) y acciones sobre ellos.
// Una sola tabla declarativa (rol × recurso × acción) alimenta tanto el gate
// de rutas como los handlers de mutación: la política vive en un único lugar.
const (
	ResourceDashboard    = "dashboard"
	ResourceItems        = "items"
	ResourceTransactions = "transactions"
	ResourceSuppliers    = "suppliers"
	ResourceCategories   = "categories"
	ResourceDestinations = "destinations"
	ResourceUsers        = "users"
)

const (
	ActionView     = "view"
	ActionCreate   = "create"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionStockIn  = "stock_in"
	ActionStockOut = "stock_out"
	ActionCancel   = "cancel"
	ActionReturn   = "return"
)

type permKey struct {
	role     string
	resource string
}

// permissions: acciones permitidas por (rol, recurso). Un recurso ausente
// para un rol significa sin acceso, incluida la vista.
var permissions = map[permKey][]string{
	// admin: acceso total a todos los recursos.
	{RoleAdmin, ResourceDashboard}:    {ActionView},
	{RoleAdmin, ResourceItems}:        {ActionView, ActionCreate, ActionUpdate, ActionDelete},
	{RoleAdmin, ResourceTransactions}: {ActionView, ActionStockIn, ActionStockOut, ActionCancel, ActionReturn},
	{RoleAdmin, ResourceSuppliers}:    {ActionView, ActionCreate, ActionUpdate, ActionDelete},
	{RoleAdmin, ResourceCategories}:   {ActionView, ActionCreate, ActionUpdate, ActionDelete},
	{RoleAdmin, ResourceDestinations}: {ActionView, ActionCreate, ActionUpdate, ActionDelete},
	{RoleAdmin, ResourceUsers}:        {ActionView, ActionCreate, ActionDelete},

	// manager: ve todo menos usuarios; solo opera salidas y devoluciones.
	{RoleManager, ResourceDashboard}:    {ActionView},
	{RoleManager, ResourceItems}:        {ActionView},
	{RoleManager, ResourceTransactions}: {ActionView, ActionStockOut, ActionReturn},
	{RoleManager, ResourceSuppliers}:    {ActionView},
	{RoleManager, ResourceCategories}:   {ActionView},
	{RoleManager, ResourceDestinations}: {ActionView},

	// staff: dashboard y transacciones (salidas y devoluciones) únicamente.
	{RoleStaff, ResourceDashboard}:    {ActionView},
	{RoleStaff, ResourceTransactions}: {ActionView, ActionStockOut, ActionReturn},
}

// Allowed responde si el rol puede ejecutar la acción sobre el recurso.
// La comparación de rol es case-insensitive.
func Allowed(role, resource, action string) bool {
	acts, ok := permissions[permKey{NormalizeRole(role), resource}]
	if !ok {
		return false
	}
	for _, a := range acts {
		if a == action {
			return true
		}
	}
	return false
}

// CanViewMenu responde si el rol tiene acceso de vista al segmento de ruta.
// Es la consulta que hace el gate por prefijo: misma tabla, acción view.
func CanViewMenu(role, resource string) bool {
	return Allowed(role, resource, ActionView)
}
