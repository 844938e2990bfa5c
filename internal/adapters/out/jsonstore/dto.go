// Package jsonstore persists orders as a single human-readable JSON document.
// It implements the repository pattern for the order entity, handling the
// conversion between domain orders and their stored representation.
//
// The file format (field names, date layout, two-space indent, unescaped
// non-ASCII text) is kept compatible with pre-existing data files, which may
// contain records written by earlier versions in other languages.
package jsonstore

import (
	"time"

	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/core/domain/model/order"
)

// dateLayout is the stored timestamp format. Times are naive local time,
// matching the records already present in existing data files.
const dateLayout = "2006-01-02 15:04:05"

// orderDTO is the stored shape of one order. Field names and their order are
// part of the on-disk contract and must not change.
type orderDTO struct {
	OrderNum        string `json:"order_num"`
	Item            string `json:"item"`
	Address         string `json:"address"`
	State           string `json:"state"`
	Price           string `json:"price"`
	Date            string `json:"date"`
	Status          string `json:"status"`
	DeliveryRequest string `json:"delivery_request,omitempty"`
}

// fromDomain converts an order to its stored representation.
func fromDomain(o *order.Order) orderDTO {
	return orderDTO{
		OrderNum:        o.Number().String(),
		Item:            o.Item(),
		Address:         o.Address(),
		State:           o.MentalState().String(),
		Price:           o.Price(),
		Date:            o.CreatedAt().Format(dateLayout),
		Status:          o.StatusLabel(),
		DeliveryRequest: o.DeliveryRequest(),
	}
}

// toDomain reconstructs an order from its stored representation. Records
// written before the delivery_request field existed restore with the default
// sentinel; mental states are carried through unvalidated so legacy labels
// stay loadable.
func toDomain(dto orderDTO) (*order.Order, error) {
	number, err := kernel.OrderNumberFromString(dto.OrderNum)
	if err != nil {
		return nil, err
	}

	createdAt, err := time.ParseInLocation(dateLayout, dto.Date, time.Local)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		number,
		dto.Item,
		dto.Address,
		dto.DeliveryRequest,
		order.MentalState(dto.State),
		dto.Price,
		createdAt,
		dto.Status,
	)
}
