package catalog

var defaultServices = []Service{
	{
		ID:               "paralysis",
		Name:             "Paralysis Treatment",
		ShortDescription: "Advanced neuro-physiotherapy techniques to improve mobility and muscle function.",
		FullDescription:  "Our paralysis rehabilitation combines neuro-muscular re-education, electrical stimulation, and functional movement training. Sessions focus on improving strength, mobility, and coordination through guided physiotherapy and personalized care.",
		Benefits: []string{
			"Restores voluntary movement and balance",
			"Improves muscle tone and coordination",
			"Reduces stiffness and pain",
			"Personalized recovery roadmap",
			"Specialized neuro-physiotherapy protocols",
		},
		Icon:  "brain",
		Price: 500,
	},
	{
		ID:               "spondylosis",
		Name:             "Spondylosis Treatment",
		ShortDescription: "Relief and strengthening therapy for neck and back spondylosis.",
		FullDescription:  "Comprehensive treatment combining manual therapy, therapeutic exercises, and postural correction to manage cervical and lumbar spondylosis. Our approach focuses on pain reduction and preventing disease progression.",
		Benefits: []string{
			"Reduces neck and back pain",
			"Improves spinal mobility",
			"Strengthens supporting muscles",
			"Prevents further degeneration",
			"Enhances posture and alignment",
		},
		Icon:  "bone",
		Price: 400,
	},
	{
		ID:               "nerve-injury",
		Name:             "Nerve Injury Rehabilitation",
		ShortDescription: "Nerve recovery through guided motion and electrotherapy.",
		FullDescription:  "Specialized rehabilitation program for peripheral nerve injuries using neuromuscular electrical stimulation, therapeutic exercises, and functional training to promote nerve regeneration and restore function.",
		Benefits: []string{
			"Promotes nerve regeneration",
			"Prevents muscle atrophy",
			"Improves sensory function",
			"Restores functional movements",
			"Reduces neuropathic pain",
		},
		Icon:  "zap",
		Price: 450,
	},
	{
		ID:               "hajima-dry-needling",
		Name:             "Hajima Therapy / Dry Needling",
		ShortDescription: "Trigger point and deep tissue relief for chronic muscle pain.",
		FullDescription:  "Advanced trigger point therapy using dry needling techniques to release muscle knots, reduce pain, and improve tissue healing. Effective for chronic muscle pain and myofascial dysfunction.",
		Benefits: []string{
			"Releases muscle trigger points",
			"Reduces chronic muscle pain",
			"Improves blood circulation",
			"Accelerates tissue healing",
			"Restores normal muscle function",
		},
		Icon:  "target",
		Price: 350,
	},
	{
		ID:               "shoulder-pain",
		Name:             "Shoulder Pain Management",
		ShortDescription: "Restores flexibility and posture using advanced physiotherapy.",
		FullDescription:  "Comprehensive shoulder rehabilitation addressing rotator cuff injuries, frozen shoulder, and impingement syndromes through manual therapy, strengthening exercises, and mobility training.",
		Benefits: []string{
			"Reduces shoulder pain and stiffness",
			"Improves range of motion",
			"Strengthens rotator cuff muscles",
			"Corrects postural imbalances",
			"Prevents recurrent injuries",
		},
		Icon:  "user",
		Price: 400,
	},
	{
		ID:               "muscle-weakness",
		Name:             "Muscle Weakness Recovery",
		ShortDescription: "Targeted exercises to rebuild muscle strength.",
		FullDescription:  "Progressive resistance training and neuromuscular re-education to address muscle weakness from injury, surgery, or prolonged inactivity. Customized programs to restore strength and functional capacity.",
		Benefits: []string{
			"Rebuilds muscle strength",
			"Improves functional capacity",
			"Enhances neuromuscular control",
			"Prevents muscle atrophy",
			"Increases endurance and stamina",
		},
		Icon:  "dumbbell",
		Price: 350,
	},
	{
		ID:               "tennis-elbow",
		Name:             "Tennis Elbow Therapy",
		ShortDescription: "Specific exercises to reduce pain and inflammation in the elbow.",
		FullDescription:  "Targeted treatment for lateral epicondylitis using eccentric strengthening, manual therapy, and activity modification to reduce pain and restore function.",
		Benefits: []string{
			"Reduces elbow pain and tenderness",
			"Improves grip strength",
			"Restores normal elbow function",
			"Prevents chronic tendinopathy",
			"Enables return to activities",
		},
		Icon:  "tennis",
		Price: 300,
	},
	{
		ID:               "back-pain",
		Name:             "Back Pain Relief",
		ShortDescription: "Personalized spinal mobilization and posture correction programs.",
		FullDescription:  "Evidence-based treatment for acute and chronic back pain combining manual therapy, core strengthening, and ergonomic education. Addresses root causes for long-term relief.",
		Benefits: []string{
			"Reduces acute and chronic back pain",
			"Improves spinal mobility",
			"Strengthens core muscles",
			"Corrects postural dysfunction",
			"Prevents future episodes",
		},
		Icon:  "spine",
		Price: 400,
	},
	{
		ID:               "golfer-elbow",
		Name:             "Golfer's Elbow Therapy",
		ShortDescription: "Focused strengthening and recovery sessions for the elbow joint.",
		FullDescription:  "Comprehensive treatment for medial epicondylitis using eccentric exercises, manual therapy, and progressive loading protocols to heal the affected tendons.",
		Benefits: []string{
			"Reduces medial elbow pain",
			"Improves wrist and forearm strength",
			"Restores normal tendon function",
			"Enables gradual return to activity",
			"Prevents recurrent tendinopathy",
		},
		Icon:  "golf",
		Price: 300,
	},
	{
		ID:               "post-fracture",
		Name:             "Post Fracture Rehabilitation",
		ShortDescription: "Step-by-step physiotherapy plan to restore strength after fractures.",
		FullDescription:  "Structured rehabilitation program following fracture healing, focusing on joint mobility, muscle strengthening, and functional restoration to ensure complete recovery.",
		Benefits: []string{
			"Restores joint mobility",
			"Rebuilds muscle strength",
			"Improves bone healing",
			"Prevents stiffness and complications",
			"Accelerates functional recovery",
		},
		Icon:  "bone-break",
		Price: 450,
	},
}
