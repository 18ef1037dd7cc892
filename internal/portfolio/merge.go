package portfolio

// Merge 用一次提交构造新的 Record。
// 非资产字段全量取自提交；资产字段仅在提交未携带新文件、
// 且此前已存在记录（以 Name 已设置为准）时沿用旧引用。
func Merge(prev *Record, sub Submission) *Record {
	rec := &Record{
		Name:         sub.Name,
		Role:         sub.Role,
		Email:        sub.Email,
		Phone:        sub.Phone,
		Location:     sub.Location,
		About:        sub.About,
		Education:    sub.Education,
		CGPA:         sub.CGPA,
		Experience:   sub.Experience,
		Achievements: sub.Achievements,
		Template:     sub.Template,
		TextStyle:    sub.TextStyle,
		Skills:       DedupeSkills(sub.Skills),
		Projects:     sub.Projects,

		ProfileImage:  sub.ProfileImage,
		Resume:        sub.Resume,
		Certificates:  sub.Certificates,
		ProjectImages: sub.ProjectImages,
	}

	// 沿用条件取决于旧记录是否存在，而非具体字段此前是否有值。
	if prev == nil || prev.Name == "" {
		return rec
	}

	if rec.ProfileImage == "" {
		rec.ProfileImage = prev.ProfileImage
	}
	if rec.Resume == "" {
		rec.Resume = prev.Resume
	}
	if len(rec.Certificates) == 0 {
		rec.Certificates = prev.Certificates
	}
	if len(rec.ProjectImages) == 0 {
		rec.ProjectImages = prev.ProjectImages
	}
	return rec
}

// DedupeSkills 去除重复技能，保留首次出现的顺序。
func DedupeSkills(skills []string) []string {
	if len(skills) == 0 {
		return skills
	}
	seen := make(map[string]struct{}, len(skills))
	result := make([]string, 0, len(skills))
	for _, skill := range skills {
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		result = append(result, skill)
	}
	return result
}
