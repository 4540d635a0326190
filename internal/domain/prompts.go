package domain

// ClassificationPrompt instructs the model to answer with exactly one of the
// four category words.
const ClassificationPrompt = `Please analyze this image and determine which single category it best fits into. Respond ONLY with one of these exact words:
- healthcare
- psychology
- education
- undersea

Choose the most appropriate category based on these criteria:
- healthcare: medical images, clinical photos, anatomical diagrams, health-related content
- psychology: behavioral studies, emotional expressions, psychological tests, therapy settings
- education: learning materials, classroom content, educational diagrams, teaching resources
- undersea: marine life, underwater equipment, oceanic phenomena, submarines, aquatic scenes

Respond with just the category name in lowercase, nothing else.`

// analysisPrompts carries the fixed multi-part analysis instruction per
// domain. Each prompt requests the same seven-block structure with
// domain-specific section 3 and section 5 headers.
var analysisPrompts = map[Domain]string{
	DomainHealthcare: `Analyze this medical image with high precision. Please structure your analysis in the following format:

1. OBJECT IDENTIFICATION
- List all medical objects, structures, or conditions visible in the image
- For each object, specify its approximate location (use terms like 'top-left', 'center', 'bottom-right', etc.)
- Indicate confidence level for each identification

2. DETAILED DESCRIPTION
- Size and characteristics of identified structures
- Notable medical features or anomalies
- Tissue characteristics and patterns
- Quality and clarity of the image

3. MEDICAL CONTEXT
- Type of medical imaging used (if apparent)
- Anatomical region shown
- Relevant medical context
- Image quality and positioning

4. TECHNICAL ASSESSMENT
- Medical significance of observed features
- Potential diagnostic indicators
- Anatomical relationships
- Quality factors affecting interpretation

5. CLINICAL CONSIDERATIONS
- Potential clinical implications
- Areas requiring attention
- Recommended follow-up if applicable

6. ANNOTATIONS
Please provide coordinates for detected objects in this format:
[Object1]: type, confidence_level, location_description
[Object2]: type, confidence_level, location_description
etc.

7. ADDITIONAL OBSERVATIONS
- Any other relevant medical details
- Image quality considerations
- Technical factors affecting interpretation

Please be as specific and detailed as possible in your medical analysis.`,

	DomainPsychology: `Analyze this psychology-related image with high precision. Please structure your analysis in the following format:

1. OBJECT IDENTIFICATION
- List all relevant objects, expressions, or behavioral indicators in the image
- For each element, specify its location (use terms like 'top-left', 'center', 'bottom-right', etc.)
- Indicate confidence level for each identification

2. DETAILED DESCRIPTION
- Facial expressions and body language
- Environmental elements
- Interpersonal dynamics
- Visual patterns and arrangements

3. PSYCHOLOGICAL CONTEXT
- Setting and atmosphere
- Social dynamics present
- Environmental factors
- Mood and emotional tone

4. TECHNICAL ASSESSMENT
- Psychological significance of observed elements
- Behavioral patterns
- Interactive elements
- Environmental psychology factors

5. BEHAVIORAL CONSIDERATIONS
- Potential psychological implications
- Notable behavioral patterns
- Relevant psychological factors

6. ANNOTATIONS
Please provide coordinates for detected elements in this format:
[Element1]: type, confidence_level, location_description
[Element2]: type, confidence_level, location_description
etc.

7. ADDITIONAL OBSERVATIONS
- Contextual factors
- Cultural considerations
- Other relevant psychological elements

Please be as specific and detailed as possible in your psychological analysis.`,

	DomainEducation: `Analyze this educational content with high precision. Please structure your analysis in the following format:

1. OBJECT IDENTIFICATION
- List all educational elements, materials, or content visible
- For each element, specify its location (use terms like 'top-left', 'center', 'bottom-right', etc.)
- Indicate confidence level for each identification

2. DETAILED DESCRIPTION
- Content organization and layout
- Educational materials present
- Teaching tools and resources
- Visual aids and illustrations

3. EDUCATIONAL CONTEXT
- Subject matter and topic area
- Target educational level
- Learning objectives
- Pedagogical approach

4. TECHNICAL ASSESSMENT
- Educational effectiveness
- Teaching methodology
- Learning support elements
- Instructional design elements

5. PEDAGOGICAL CONSIDERATIONS
- Learning accessibility
- Student engagement factors
- Teaching effectiveness
- Areas for improvement

6. ANNOTATIONS
Please provide coordinates for detected elements in this format:
[Element1]: type, confidence_level, location_description
[Element2]: type, confidence_level, location_description
etc.

7. ADDITIONAL OBSERVATIONS
- Pedagogical effectiveness
- Accessibility considerations
- Educational best practices

Please be as specific and detailed as possible in your educational analysis.`,

	DomainUndersea: `Analyze this underwater image with high precision. Please structure your analysis in the following format:

1. OBJECT IDENTIFICATION
- List all objects detected in the image
- For each object, specify its approximate location (use terms like 'top-left', 'center', 'bottom-right', etc.)
- Indicate confidence level for each identification

2. DETAILED DESCRIPTION
- Size and scale of objects
- Physical characteristics
- Notable features or markings
- Condition or state of objects

3. ENVIRONMENTAL CONTEXT
- Water conditions and visibility
- Depth indicators if apparent
- Surrounding elements or features
- Lighting conditions

4. TECHNICAL ASSESSMENT
- If military/industrial equipment: specifications, type, potential purpose
- If marine life: species, behavior, significance
- If natural phenomenon: type, characteristics, implications

5. SAFETY CONSIDERATIONS
- Potential hazards or risks
- Required precautions
- Safety recommendations

6. ANNOTATIONS
Please provide coordinates for detected objects in this format:
[Object1]: type, confidence_level, location_description
[Object2]: type, confidence_level, location_description
etc.

7. ADDITIONAL OBSERVATIONS
- Any other relevant details
- Unusual features or anomalies
- Historical or operational context if applicable

Please be as specific and detailed as possible, particularly when identifying military equipment, marine hazards, or significant marine phenomena.`,
}

// AnalysisPrompt returns the fixed analysis prompt for a domain. Unknown
// domains fall back to the default domain's prompt.
func AnalysisPrompt(d Domain) string {
	if p, ok := analysisPrompts[d]; ok {
		return p
	}
	return analysisPrompts[DefaultDomain]
}
