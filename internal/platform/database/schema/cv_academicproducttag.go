package schema

// CVAcademicProductTagTable represents the 'cv.academicproducttag' table
type CVAcademicProductTagTable struct {
	Table     string
	ProductID string
	TagID     string
}

// CVAcademicProductTag is the schema definition for cv.academicproducttag
var CVAcademicProductTag = CVAcademicProductTagTable{
	Table:     "cv.academicproducttag",
	ProductID: "productid",
	TagID:     "tagid",
}
