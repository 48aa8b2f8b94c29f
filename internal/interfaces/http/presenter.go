package http

import (
	"github.com/davortega/bodega-equipos/internal/application/dto"
	"github.com/davortega/bodega-equipos/internal/domain/entity"
)

// Conversión entidad -> DTO. Los casos de uso devuelven entidades; la capa HTTP
// decide la representación.

func toEquipmentResponse(e *entity.Equipment) dto.EquipmentResponse {
	return dto.EquipmentResponse{
		ID:               e.ID,
		Esigeft:          e.Esigeft,
		Esbye:            e.Esbye,
		Tipo:             e.Tipo,
		Description:      e.Description,
		Unit:             e.Unit,
		MaterialServible: e.MaterialServible,
		MaterialCaducado: e.MaterialCaducado,
		MaterialPrestado: e.MaterialPrestado,
		TotalEnBodega:    e.TotalEnBodega(),
		Total:            e.Total(),
		Observacion:      e.Observacion,
		CustodianID:      e.CustodianID,
		BranchID:         e.BranchID,
		EntryDate:        e.EntryDate,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func toEquipmentList(items []*entity.Equipment, limit, offset int) dto.EquipmentListResponse {
	out := dto.EquipmentListResponse{
		Items: make([]dto.EquipmentResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, e := range items {
		out.Items = append(out.Items, toEquipmentResponse(e))
	}
	return out
}

func toLoanRecordResponse(l *entity.LoanRecord) dto.LoanRecordResponse {
	return dto.LoanRecordResponse{
		ID:                        l.ID,
		TransactionID:             l.TransactionID,
		EquipmentID:               l.EquipmentID,
		Cantidad:                  l.Cantidad,
		ResponsibleName:           l.ResponsibleName,
		ResponsibleIdentification: l.ResponsibleIdentification,
		ResponsibleArea:           l.ResponsibleArea,
		CustodianID:               l.CustodianID,
		PerformedByID:             l.PerformedByID,
		BranchID:                  l.BranchID,
		LoanDate:                  l.LoanDate,
		ReturnDate:                l.ReturnDate,
		Status:                    l.Status,
		Observacion:               l.Observacion,
	}
}

func toLoanRecordList(items []*entity.LoanRecord, limit, offset int) dto.LoanRecordListResponse {
	out := dto.LoanRecordListResponse{
		Items: make([]dto.LoanRecordResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, l := range items {
		out.Items = append(out.Items, toLoanRecordResponse(l))
	}
	return out
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		EquipmentID:   m.EquipmentID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		ResponsibleID: m.ResponsibleID,
		PerformedByID: m.PerformedByID,
		BranchID:      m.BranchID,
		Timestamp:     m.Timestamp,
		Reason:        m.Reason,
	}
}

func toMovementList(items []*entity.Movement, limit, offset int) dto.MovementListResponse {
	out := dto.MovementListResponse{
		Items: make([]dto.MovementResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, m := range items {
		out.Items = append(out.Items, toMovementResponse(m))
	}
	return out
}

func toCustodianResponse(c *entity.Custodian) dto.CustodianResponse {
	return dto.CustodianResponse{
		ID:             c.ID,
		Name:           c.Name,
		Rank:           c.Rank,
		Identification: c.Identification,
		Area:           c.Area,
		IsActive:       c.IsActive,
		IsDefault:      c.IsDefault,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toBranchResponse(b *entity.Branch) dto.BranchResponse {
	return dto.BranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		Location:  b.Location,
		ManagerID: b.ManagerID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		BranchID:  u.BranchID,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
