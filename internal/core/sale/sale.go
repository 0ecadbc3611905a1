// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sale manages second-hand items offered on the public "venta" page.
package sale

import "github.com/taibuivan/hojadevida/pkg/date"

// Condition describes the state of a sale item.
type Condition string

const (
	ConditionNew  Condition = "Nuevo"
	ConditionGood Condition = "Bueno"
	ConditionFair Condition = "Regular"
)

// Conditions lists the accepted values in display order.
var Conditions = []string{string(ConditionNew), string(ConditionGood), string(ConditionFair)}

// Item is one listing. Image is a media reference shown on the page but never
// merged into the PDF export.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Condition   Condition `json:"condition"`
	Image       string    `json:"image"`
	PublishedOn date.Date `json:"published_on"`
	Stock       int       `json:"stock"`
	Active      bool      `json:"active"`
}

// Available reports whether at least one unit is left.
func (i *Item) Available() bool {
	return i.Stock > 0
}

const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCondition   = "condition"
	FieldImage       = "image"
	FieldPublishedOn = "published_on"
	FieldStock       = "stock"
)
