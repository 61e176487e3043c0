package service

import (
	"repairdesk/internal/contract"
	"repairdesk/internal/domain/entity"
	"repairdesk/internal/utils"
)

func toUserResponse(user *entity.User) *contract.UserResponse {
	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	}

	return &contract.UserResponse{
		ID:        user.UserID,
		UUID:      user.UUID,
		Nick:      user.Nick,
		Email:     user.Email,
		Role:      roleName,
		CompanyID: user.CompanyID,
		CreatedAt: utils.FormatEpoch(user.CreatedAt),
	}
}

func toStageResponse(status *entity.ServiceStatus) *contract.StageResponse {
	return &contract.StageResponse{
		ID:        status.StatusID,
		UUID:      status.UUID,
		Name:      status.Name,
		Details:   status.Details,
		Order:     status.StageOrder,
		Cost:      status.Cost,
		IsActive:  status.IsActive,
		CreatedAt: utils.FormatEpoch(status.CreatedAt),
	}
}

func toActingUserResponse(user *entity.User) *contract.ActingUserResponse {
	if user == nil {
		return nil
	}

	resp := &contract.ActingUserResponse{
		ID:   user.UserID,
		Nick: user.Nick,
	}
	if user.Role != nil {
		resp.Role = user.Role.Name
	}
	return resp
}

// toStatusChangeResponse renders one journal entry. Stage and user fall
// back to the preloaded associations when the explicit arguments are nil.
func toStatusChangeResponse(change *entity.StatusChange, stage *entity.ServiceStatus, user *entity.User) *contract.StatusChangeResponse {
	if stage == nil {
		stage = change.Status
	}
	if user == nil {
		user = change.User
	}

	resp := &contract.StatusChangeResponse{
		ID:          change.StatusChangeID,
		UUID:        change.UUID,
		Details:     change.Details,
		SysDetail:   change.SysDetail,
		IsCompleted: change.IsCompleted,
		CreatedAt:   utils.FormatEpoch(change.CreatedAt),
		User:        toActingUserResponse(user),
	}
	if stage != nil {
		resp.Stage = toStageResponse(stage)
	}
	return resp
}

func toPersonResponse(person *entity.Person, cipher *utils.FieldCipher) *contract.PersonResponse {
	if person == nil {
		return nil
	}

	return &contract.PersonResponse{
		UUID:        person.UUID,
		Names:       cipher.DecryptLenient(person.Names),
		LastNames:   cipher.DecryptLenient(person.LastNames),
		DNI:         cipher.DecryptLenient(person.DNI),
		MobilePhone: cipher.DecryptLenient(person.MobilePhone),
		Email:       cipher.DecryptLenient(person.Email),
	}
}

func toClientResponse(client *entity.Client, cipher *utils.FieldCipher) *contract.ClientResponse {
	if client == nil {
		return nil
	}

	return &contract.ClientResponse{
		ID:          client.ClientID,
		UUID:        client.UUID,
		HasWhatsapp: client.HasWhatsapp,
		HasEmail:    client.HasEmail,
		Person:      toPersonResponse(client.Person, cipher),
	}
}

func toModelResponse(model *entity.Model) *contract.ModelResponse {
	if model == nil {
		return nil
	}

	resp := &contract.ModelResponse{
		ID:        model.ModelID,
		Name:      model.Name,
		ShortName: model.ShortName,
		Img:       model.Img,
	}
	if model.Brand != nil {
		resp.Brand = model.Brand.Name
	}
	return resp
}

func toOrderResponse(order *entity.ServiceOrder, cipher *utils.FieldCipher) *contract.OrderResponse {
	return &contract.OrderResponse{
		ID:                 order.ServiceOrderID,
		UUID:               order.UUID,
		Number:             order.Number,
		Observation:        order.Observation,
		LockPatron:         cipher.DecryptLenient(order.LockPatron),
		LockPass:           cipher.DecryptLenient(order.LockPass),
		IsFinished:         order.IsFinished,
		ReceivedAt:         utils.FormatEpoch(order.ReceivedAt),
		SerialNumber:       order.SerialNumber,
		Color:              order.Color,
		IsRepair:           order.IsRepair,
		TechSpecifications: order.TechSpecifications,
		ProblemDescription: order.ProblemDescription,
		HasSurvey:          order.HasSurvey,
		AdvancePayment:     order.AdvancePayment,
		IsActive:           order.IsActive,
		CreatedAt:          utils.FormatEpoch(order.CreatedAt),
		ClientID:           order.ClientID,
		ModelID:            order.ModelID,
		Client:             toClientResponse(order.Client, cipher),
		Model:              toModelResponse(order.Model),
	}
}
