package dto

import "time"

// Pointer fields distinguish "absent" from "zero" on partial updates.

type InventoryCreateRequest struct {
	UserID      uint       `json:"userId,omitempty"`
	ProductType string     `json:"productType"`
	Status      string     `json:"status"`
	Size        string     `json:"size"`
	SerialNo    string     `json:"serialNo"`
	Date        *time.Time `json:"date,omitempty"`
	Location    string     `json:"location"`
	Issuer      string     `json:"issuer"`
}

type InventoryUpdateRequest struct {
	ProductType *string    `json:"productType,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Size        *string    `json:"size,omitempty"`
	SerialNo    *string    `json:"serialNo,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Issuer      *string    `json:"issuer,omitempty"`
}

// Fields returns the column map for a partial update.
func (r InventoryUpdateRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.ProductType != nil {
		fields["product_type"] = *r.ProductType
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.Size != nil {
		fields["size"] = *r.Size
	}
	if r.SerialNo != nil {
		fields["serial_no"] = *r.SerialNo
	}
	if r.Date != nil {
		fields["date"] = *r.Date
	}
	if r.Location != nil {
		fields["location"] = *r.Location
	}
	if r.Issuer != nil {
		fields["issuer"] = *r.Issuer
	}
	return fields
}

type ToolCreateRequest struct {
	UserID   uint   `json:"userId,omitempty"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Location string `json:"location"`
}

type ToolUpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	Status   *string `json:"status,omitempty"`
	Location *string `json:"location,omitempty"`
}

func (r ToolUpdateRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.Location != nil {
		fields["location"] = *r.Location
	}
	return fields
}

type TaskCreateRequest struct {
	UserID      uint       `json:"userId,omitempty"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueAt       *time.Time `json:"dueAt,omitempty"`
}

type TaskUpdateRequest struct {
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	DueAt       *time.Time `json:"dueAt,omitempty"`
}

func (r TaskUpdateRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.DueAt != nil {
		fields["due_at"] = *r.DueAt
	}
	return fields
}
