package kernel

type CareerHistoryID string

func NewCareerHistoryID(id string) CareerHistoryID { return CareerHistoryID(id) }
func (r CareerHistoryID) String() string           { return string(r) }
func (r CareerHistoryID) IsEmpty() bool            { return string(r) == "" }

type LearningPathID string

func NewLearningPathID(id string) LearningPathID { return LearningPathID(id) }
func (r LearningPathID) String() string          { return string(r) }
func (r LearningPathID) IsEmpty() bool           { return string(r) == "" }

type ResumeID string

func NewResumeID(id string) ResumeID { return ResumeID(id) }
func (r ResumeID) String() string    { return string(r) }
func (r ResumeID) IsEmpty() bool     { return string(r) == "" }
