// Package suggestionrepo provides data transfer objects and mapping functions
// for suggested round persistence. Suggestions are written by the planner;
// this core only transitions their claim and lifecycle columns.
package suggestionrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/suggestion"

	"github.com/google/uuid"
)

// SuggestedRoundDTO represents the database structure for persisting
// suggested round aggregates. The nullable DriverID doubles as the claim
// flag: a non-null value means a driver holds the grouping.
type SuggestedRoundDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status        int       `gorm:"index"`
	PreparationAt time.Time
	DepartureAt   time.Time
	ExpiresAt     time.Time  `gorm:"index"`
	DriverID      *uuid.UUID `gorm:"type:uuid;index"`
	ClaimedAt     *time.Time
	Members       []MemberDTO `gorm:"foreignKey:SuggestedRoundID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for suggested round entities.
// Overrides GORM's default naming convention to use "suggested_rounds".
func (SuggestedRoundDTO) TableName() string {
	return "suggested_rounds"
}

// MemberDTO represents one order slot within a suggested round.
// The (round, sequence) pair is the primary key; density across a round's
// members is validated by the domain aggregate on every read.
type MemberDTO struct {
	SuggestedRoundID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Sequence         int       `gorm:"primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;not null;index"`
	EstimatedArrival time.Time
}

// TableName specifies the database table name for suggestion member entities.
// Overrides GORM's default naming convention to use "suggestion_members".
func (MemberDTO) TableName() string {
	return "suggestion_members"
}

// fromDomain converts a suggestion domain aggregate to its database
// representation, member children included.
func fromDomain(aggregate *suggestion.Suggestion) SuggestedRoundDTO {
	suggestionID := aggregate.ID().Bytes()
	members := make([]MemberDTO, 0, len(aggregate.Members()))

	for _, m := range aggregate.Members() {
		members = append(members, MemberDTO{
			SuggestedRoundID: suggestionID,
			Sequence:         m.Sequence(),
			OrderID:          m.OrderID().Bytes(),
			EstimatedArrival: m.EstimatedArrival(),
		})
	}

	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return SuggestedRoundDTO{
		ID:            suggestionID,
		Status:        int(aggregate.Status()),
		PreparationAt: aggregate.PreparationAt(),
		DepartureAt:   aggregate.DepartureAt(),
		ExpiresAt:     aggregate.ExpiresAt(),
		DriverID:      driverID,
		ClaimedAt:     aggregate.ClaimedAt(),
		Members:       members,
	}
}

// toDomain converts a database DTO to a suggestion domain aggregate using
// RestoreSuggestion, which re-validates the member list on every read.
func toDomain(dto SuggestedRoundDTO) (*suggestion.Suggestion, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	members := make([]suggestion.Member, 0, len(dto.Members))
	for _, memberDto := range dto.Members {
		orderID, orderErr := kernel.UUIDFromBytes(memberDto.OrderID[:])
		if orderErr != nil {
			return nil, orderErr
		}

		member, memberErr := suggestion.NewMember(orderID, memberDto.Sequence, memberDto.EstimatedArrival)
		if memberErr != nil {
			return nil, memberErr
		}
		members = append(members, member)
	}

	return suggestion.RestoreSuggestion(
		id,
		suggestion.Status(dto.Status),
		dto.PreparationAt,
		dto.DepartureAt,
		dto.ExpiresAt,
		driverID,
		dto.ClaimedAt,
		members,
	)
}
