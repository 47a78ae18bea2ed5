package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"campus_backend/apperr"
	"campus_backend/dto"
	"campus_backend/models"
	"campus_backend/repositories"
)

type RoomService struct {
	rooms RoomStore
	seq   SequenceAllocator
}

func NewRoomService(rooms RoomStore, seq SequenceAllocator) *RoomService {
	return &RoomService{rooms: rooms, seq: seq}
}

func (s *RoomService) Create(ctx context.Context, req dto.RoomRequest) (models.Room, error) {
	exists, err := s.rooms.ExistsByPlacement(ctx, req.FloorNo, req.Building, req.Name)
	if err != nil {
		return models.Room{}, err
	}
	if exists {
		return models.Room{}, apperr.ErrRoomExists
	}

	roomID, err := s.seq.NextPublicID(ctx, "R")
	if err != nil {
		return models.Room{}, err
	}
	created, err := s.rooms.Insert(ctx, models.Room{
		RoomID:    roomID,
		FloorNo:   req.FloorNo,
		Building:  req.Building,
		Name:      req.Name,
		Capacity:  req.Capacity,
		Resources: req.Resources,
	})
	if repositories.IsDup(err) {
		return models.Room{}, apperr.ErrRoomExists
	}
	if err != nil {
		return models.Room{}, err
	}
	return created, nil
}

func (s *RoomService) Update(ctx context.Context, roomID string, req dto.RoomUpdateRequest) (*models.Room, error) {
	room, err := s.rooms.UpdateByRoomID(ctx, roomID, bson.M{
		"floorNo":   req.FloorNo,
		"building":  req.Building,
		"name":      req.Name,
		"capacity":  req.Capacity,
		"resources": req.Resources,
	})
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperr.ErrRoomNotFound
	}
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, roomID string) error {
	deleted, err := s.rooms.DeleteByRoomID(ctx, roomID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.ErrRoomNotFound
	}
	return nil
}

func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	return s.rooms.All(ctx)
}
