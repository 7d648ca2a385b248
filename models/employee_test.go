package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmployeeTableName(t *testing.T) {
	employee := Employee{}
	assert.Equal(t, "employees", employee.TableName(), "Table name should be 'employees'")
}

func TestEmployeeStructFields(t *testing.T) {
	email := "john@example.com"
	department := "Production"
	employee := Employee{
		Name:       "John Doe",
		Email:      &email,
		Department: &department,
	}

	assert.Equal(t, "John Doe", employee.Name, "Name should be set correctly")
	assert.Equal(t, "john@example.com", *employee.Email, "Email should be set correctly")
	assert.Equal(t, "Production", *employee.Department, "Department should be set correctly")
}

func TestEmployeeOptionalFields(t *testing.T) {
	// Email and department are nullable
	employee := Employee{Name: "Jane Smith"}

	assert.Nil(t, employee.Email, "Email should be nil when not set")
	assert.Nil(t, employee.Department, "Department should be nil when not set")
}

func TestCustomerTableName(t *testing.T) {
	customer := Customer{}
	assert.Equal(t, "customers", customer.TableName(), "Table name should be 'customers'")
}

func TestProductTableName(t *testing.T) {
	product := Product{}
	assert.Equal(t, "products", product.TableName(), "Table name should be 'products'")
}
