package models

// UserRole is the role carried in tokens issued by the user service
type UserRole string

const (
	RoleCustomer   UserRole = "customer"
	RoleRestaurant UserRole = "restaurant"
	RoleAdmin      UserRole = "admin"
)
