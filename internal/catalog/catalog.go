// Package catalog holds the static option tables the request form offers:
// grades, question types, content languages and the per-grade subject lists
// of the Indonesian upper-secondary curriculum.
package catalog

// GradeOptions lists the supported grade levels.
var GradeOptions = []string{"X", "XI", "XII"}

// QuestionTypeOptions lists the question formats a package can be built from.
var QuestionTypeOptions = []string{"Pilihan Ganda", "Isian Singkat", "Uraian", "Campuran"}

// Language is a selectable content language.
type Language struct {
	Value string
	Label string
}

// LanguageOptions lists the content languages the backend can generate in.
var LanguageOptions = []Language{
	{Value: "Bahasa Indonesia", Label: "Bahasa Indonesia"},
	{Value: "Bahasa Inggris", Label: "Bahasa Inggris"},
	{Value: "Bahasa Arab", Label: "Bahasa Arab"},
	{Value: "Bahasa Sunda", Label: "Bahasa Sunda"},
}

// SubjectGroup is one named cluster of subjects within a grade.
type SubjectGroup struct {
	Name     string
	Subjects []string
}

// SubjectsByGrade maps a grade to its subject groups, in display order.
var SubjectsByGrade = map[string][]SubjectGroup{
	"X": {
		{Name: "Mata Pelajaran Wajib", Subjects: []string{
			"Pendidikan Agama & Budi Pekerti",
			"PPKn",
			"Bahasa Indonesia",
			"Matematika",
			"Bahasa Inggris",
			"PJOK",
			"Seni & Budaya",
			"Informatika",
			"Sejarah",
			"Bahasa Sunda",
		}},
		{Name: "Ilmu Pengetahuan Alam (IPA)", Subjects: []string{
			"IPA Terpadu (Fisika, Kimia, Biologi)",
			"Fisika",
			"Kimia",
			"Biologi",
		}},
		{Name: "Ilmu Pengetahuan Sosial (IPS)", Subjects: []string{
			"IPS Terpadu (Ekonomi, Geografi, Sosiologi)",
			"Ekonomi",
			"Geografi",
			"Sosiologi",
		}},
		{Name: "Agama & Bahasa (Khusus MA/Sederajat)", Subjects: []string{
			"Al-Qur’an Hadis",
			"Akidah Akhlak",
			"Fikih",
			"SKI (Sejarah Kebudayaan Islam)",
			"Bahasa Arab",
		}},
		{Name: "Pengembangan Diri & Keterampilan", Subjects: []string{
			"Life Skill",
		}},
	},
	"XI": upperGradeGroups,
	"XII": upperGradeGroups,
}

// Grades XI and XII share the same subject structure.
var upperGradeGroups = []SubjectGroup{
	{Name: "Mata Pelajaran Umum", Subjects: []string{
		"Pendidikan Agama & Budi Pekerti",
		"PPKn",
		"Bahasa Indonesia",
		"Matematika",
		"Bahasa Inggris",
		"PJOK",
		"Sejarah Indonesia",
		"Bahasa Sunda",
	}},
	{Name: "Kelompok MIPA", Subjects: []string{
		"Matematika (Peminatan)",
		"Fisika",
		"Kimia",
		"Biologi",
	}},
	{Name: "Kelompok IPS", Subjects: []string{
		"Ekonomi",
		"Geografi",
		"Sosiologi",
		"Antropologi",
	}},
	{Name: "Kelompok Bahasa & Budaya", Subjects: []string{
		"Bahasa Arab",
	}},
	{Name: "Kelompok Agama (Khusus MA/Sederajat)", Subjects: []string{
		"Al-Qur’an Hadis",
		"Akidah Akhlak",
		"Fikih",
		"SKI (Sejarah Kebudayaan Islam)",
	}},
	{Name: "Pilihan Lintas Minat / Vokasi", Subjects: []string{
		"Informatika",
		"Prakarya dan Kewirausahaan",
		"Life Skill",
	}},
}

// Subjects flattens the subject groups of one grade, in display order.
func Subjects(grade string) []string {
	var out []string
	for _, g := range SubjectsByGrade[grade] {
		out = append(out, g.Subjects...)
	}
	return out
}
