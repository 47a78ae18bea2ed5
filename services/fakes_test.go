package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"campus_backend/models"
)

// In-memory store fakes shared by the service tests.

type fakePersons struct {
	byID    map[string]models.Person
	byEmail map[string]models.Person
}

func newFakePersons(people ...models.Person) *fakePersons {
	f := &fakePersons{byID: map[string]models.Person{}, byEmail: map[string]models.Person{}}
	for _, p := range people {
		f.byID[p.PersonID] = p
		f.byEmail[p.Email] = p
	}
	return f
}

func (f *fakePersons) Insert(ctx context.Context, p models.Person) (models.Person, error) {
	f.byID[p.PersonID] = p
	f.byEmail[p.Email] = p
	return p, nil
}

func (f *fakePersons) FindByEmail(ctx context.Context, email string) (*models.Person, error) {
	if p, okay := f.byEmail[email]; okay {
		return &p, nil
	}
	return nil, nil
}

func (f *fakePersons) FindByPersonID(ctx context.Context, personID string) (*models.Person, error) {
	if p, okay := f.byID[personID]; okay {
		return &p, nil
	}
	return nil, nil
}

func (f *fakePersons) Exists(ctx context.Context, personID string) (bool, error) {
	_, okay := f.byID[personID]
	return okay, nil
}

func (f *fakePersons) CountByPersonIDs(ctx context.Context, ids []string) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, okay := f.byID[id]; okay {
			n++
		}
	}
	return n, nil
}

func (f *fakePersons) All(ctx context.Context) ([]models.Person, error) {
	people := make([]models.Person, 0, len(f.byID))
	for _, p := range f.byID {
		people = append(people, p)
	}
	return people, nil
}

func (f *fakePersons) UpdateByPersonID(ctx context.Context, personID string, fields bson.M) (*models.Person, error) {
	p, okay := f.byID[personID]
	if !okay {
		return nil, nil
	}
	if v, set := fields["firstName"].(string); set {
		p.FirstName = v
	}
	if v, set := fields["lastName"].(string); set {
		p.LastName = v
	}
	if v, set := fields["address"].(string); set {
		p.Address = v
	}
	if v, set := fields["phone"].(string); set {
		p.Phone = v
	}
	f.byID[personID] = p
	return &p, nil
}

func (f *fakePersons) DeleteByPersonID(ctx context.Context, personID string) (bool, error) {
	if _, okay := f.byID[personID]; !okay {
		return false, nil
	}
	delete(f.byID, personID)
	return true, nil
}

type fakeCourses struct {
	byCode map[string]models.Course
}

func newFakeCourses(courses ...models.Course) *fakeCourses {
	f := &fakeCourses{byCode: map[string]models.Course{}}
	for _, c := range courses {
		f.byCode[c.CourseCode] = c
	}
	return f
}

func (f *fakeCourses) Insert(ctx context.Context, c models.Course) (models.Course, error) {
	f.byCode[c.CourseCode] = c
	return c, nil
}

func (f *fakeCourses) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, okay := f.byCode[code]
	return okay, nil
}

func (f *fakeCourses) FindByCode(ctx context.Context, code string) (*models.Course, error) {
	if c, okay := f.byCode[code]; okay {
		return &c, nil
	}
	return nil, nil
}

func (f *fakeCourses) All(ctx context.Context) ([]models.Course, error) {
	courses := make([]models.Course, 0, len(f.byCode))
	for _, c := range f.byCode {
		courses = append(courses, c)
	}
	return courses, nil
}

func (f *fakeCourses) FindByFaculty(ctx context.Context, facultyID string) ([]models.Course, error) {
	var courses []models.Course
	for _, c := range f.byCode {
		for _, id := range c.Faculties {
			if id == facultyID {
				courses = append(courses, c)
				break
			}
		}
	}
	return courses, nil
}

func (f *fakeCourses) FindByCodes(ctx context.Context, codes []string) ([]models.Course, error) {
	var courses []models.Course
	for _, code := range codes {
		if c, okay := f.byCode[code]; okay {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

func (f *fakeCourses) UpdateByCode(ctx context.Context, code string, fields bson.M) (*models.Course, error) {
	c, okay := f.byCode[code]
	if !okay {
		return nil, nil
	}
	if v, set := fields["name"].(string); set {
		c.Name = v
	}
	if v, set := fields["faculties"].([]string); set {
		c.Faculties = v
	}
	f.byCode[code] = c
	return &c, nil
}

func (f *fakeCourses) DeleteByCode(ctx context.Context, code string) (bool, error) {
	if _, okay := f.byCode[code]; !okay {
		return false, nil
	}
	delete(f.byCode, code)
	return true, nil
}

type fakeRooms struct {
	byID map[string]models.Room
}

func newFakeRooms(rooms ...models.Room) *fakeRooms {
	f := &fakeRooms{byID: map[string]models.Room{}}
	for _, r := range rooms {
		f.byID[r.RoomID] = r
	}
	return f
}

func (f *fakeRooms) Insert(ctx context.Context, r models.Room) (models.Room, error) {
	f.byID[r.RoomID] = r
	return r, nil
}

func (f *fakeRooms) Exists(ctx context.Context, roomID string) (bool, error) {
	_, okay := f.byID[roomID]
	return okay, nil
}

func (f *fakeRooms) ExistsByPlacement(ctx context.Context, floorNo, building, name string) (bool, error) {
	for _, r := range f.byID {
		if r.FloorNo == floorNo && r.Building == building && r.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRooms) All(ctx context.Context) ([]models.Room, error) {
	rooms := make([]models.Room, 0, len(f.byID))
	for _, r := range f.byID {
		rooms = append(rooms, r)
	}
	return rooms, nil
}

func (f *fakeRooms) UpdateByRoomID(ctx context.Context, roomID string, fields bson.M) (*models.Room, error) {
	r, okay := f.byID[roomID]
	if !okay {
		return nil, nil
	}
	if v, set := fields["name"].(string); set {
		r.Name = v
	}
	f.byID[roomID] = r
	return &r, nil
}

func (f *fakeRooms) DeleteByRoomID(ctx context.Context, roomID string) (bool, error) {
	if _, okay := f.byID[roomID]; !okay {
		return false, nil
	}
	delete(f.byID, roomID)
	return true, nil
}

type fakeBookings struct {
	byID   map[string]models.Booking
	nextID int
}

func newFakeBookings(bookings ...models.Booking) *fakeBookings {
	f := &fakeBookings{byID: map[string]models.Booking{}}
	for _, b := range bookings {
		f.nextID++
		f.byID[fmt.Sprintf("bk%d", f.nextID)] = b
	}
	return f
}

func (f *fakeBookings) Insert(ctx context.Context, b models.Booking) (models.Booking, error) {
	f.nextID++
	f.byID[fmt.Sprintf("bk%d", f.nextID)] = b
	return b, nil
}

func (f *fakeBookings) ExistsTuple(ctx context.Context, roomID string, dayOfWeek int, start, end models.TimeOfDay) (bool, error) {
	for _, b := range f.byID {
		if b.RoomID == roomID && b.DayOfWeek == dayOfWeek && b.StartTime == start && b.EndTime == end {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookings) ExistsForTimetable(ctx context.Context, roomID, courseID string, start, end models.TimeOfDay) (bool, error) {
	for _, b := range f.byID {
		if b.RoomID == roomID && b.CourseID == courseID && b.StartTime == start && b.EndTime == end {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookings) All(ctx context.Context) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0, len(f.byID))
	for _, b := range f.byID {
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (f *fakeBookings) UpdateByID(ctx context.Context, id string, b models.Booking) (*models.Booking, error) {
	if _, okay := f.byID[id]; !okay {
		return nil, nil
	}
	f.byID[id] = b
	return &b, nil
}

func (f *fakeBookings) DeleteByID(ctx context.Context, id string) (*models.Booking, error) {
	b, okay := f.byID[id]
	if !okay {
		return nil, nil
	}
	delete(f.byID, id)
	return &b, nil
}

type fakeTimetables struct {
	byID   map[string]models.TimeTableEntry
	nextID int
}

func newFakeTimetables(entries ...models.TimeTableEntry) *fakeTimetables {
	f := &fakeTimetables{byID: map[string]models.TimeTableEntry{}}
	for _, e := range entries {
		f.nextID++
		f.byID[fmt.Sprintf("tt%d", f.nextID)] = e
	}
	return f
}

func (f *fakeTimetables) Insert(ctx context.Context, e models.TimeTableEntry) (models.TimeTableEntry, error) {
	f.nextID++
	f.byID[fmt.Sprintf("tt%d", f.nextID)] = e
	return e, nil
}

func (f *fakeTimetables) ExistsExact(ctx context.Context, e models.TimeTableEntry) (bool, error) {
	for _, existing := range f.byID {
		if existing.CourseID == e.CourseID && existing.DayOfWeek == e.DayOfWeek &&
			existing.StartTime == e.StartTime && existing.EndTime == e.EndTime &&
			existing.Faculty == e.Faculty && existing.Location == e.Location {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTimetables) All(ctx context.Context) ([]models.TimeTableEntry, error) {
	entries := make([]models.TimeTableEntry, 0, len(f.byID))
	for _, e := range f.byID {
		entries = append(entries, e)
	}
	return entries, nil
}

func (f *fakeTimetables) FindByCourseIDs(ctx context.Context, courseIDs []string) ([]models.TimeTableEntry, error) {
	var entries []models.TimeTableEntry
	for _, e := range f.byID {
		for _, id := range courseIDs {
			if e.CourseID == id {
				entries = append(entries, e)
				break
			}
		}
	}
	return entries, nil
}

func (f *fakeTimetables) UpdateByID(ctx context.Context, id string, e models.TimeTableEntry) (*models.TimeTableEntry, error) {
	if _, okay := f.byID[id]; !okay {
		return nil, nil
	}
	f.byID[id] = e
	return &e, nil
}

func (f *fakeTimetables) DeleteByID(ctx context.Context, id string) (bool, error) {
	if _, okay := f.byID[id]; !okay {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

type fakeEnrollments struct {
	records []models.Enrollment
}

func (f *fakeEnrollments) Insert(ctx context.Context, e models.Enrollment) (models.Enrollment, error) {
	f.records = append(f.records, e)
	return e, nil
}

func (f *fakeEnrollments) Exists(ctx context.Context, studentID, courseID string) (bool, error) {
	for _, e := range f.records {
		if e.StudentID == studentID && e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEnrollments) All(ctx context.Context) ([]models.Enrollment, error) {
	return f.records, nil
}

func (f *fakeEnrollments) FindByStudent(ctx context.Context, studentID string) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, e := range f.records {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEnrollments) FindByCourse(ctx context.Context, courseID string) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, e := range f.records {
		if e.CourseID == courseID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeNotifications struct {
	records []models.Notification
}

func (f *fakeNotifications) Insert(ctx context.Context, n models.Notification) (models.Notification, error) {
	f.records = append(f.records, n)
	return n, nil
}

type recordedNotification struct {
	recipient string
	message   string
}

// fakeNotifier records internal fan-out calls.
type fakeNotifier struct {
	sent []recordedNotification
}

func (f *fakeNotifier) Notify(ctx context.Context, recipient, message string) error {
	f.sent = append(f.sent, recordedNotification{recipient: recipient, message: message})
	return nil
}

type fakeSequences struct {
	counts map[string]int64
}

func (f *fakeSequences) NextPublicID(ctx context.Context, prefix string) (string, error) {
	if f.counts == nil {
		f.counts = map[string]int64{}
	}
	f.counts[prefix]++
	return fmt.Sprintf("%s%d", prefix, 999+f.counts[prefix]), nil
}
